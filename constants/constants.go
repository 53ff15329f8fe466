package constants

import (
	"os"
	"strings"
)

// GetChordsPath is the user chord data file, empty means the packaged data.
func GetChordsPath() string {
	return os.Getenv("CHORDS_PATH")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetAllowedOrigins() []string {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

// octave for notes that don't name one, when a concrete pitch is needed
const DefaultOctave = 4

const DefaultVelocity = 100

const TicksPerQuarter = 480
