package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenv files consulted before the YAML config is parsed. 우선순위:
// 실제 환경변수 > .env.local > .env (godotenv는 이미 설정된 값을 덮어쓰지 않는다).
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads whichever dotenv files exist and reports them, so the
// bootstrap log shows where secrets came from.
func LoadDotEnv() []string {
	loaded := make([]string, 0, len(dotenvFiles))
	for _, name := range dotenvFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}
