package pkg

import (
	"log"
	"os"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const maxNickLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

// Nickname strips characters that do not render well and trims nick to a
// sensible length. An empty nick gets a random pet name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > maxNickLength {
		nick = nick[:maxNickLength]
	} else if nick == "" {
		nick = petname.Generate(2, "-")
	}

	return nick
}
