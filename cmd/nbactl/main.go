// Command nbactl queries the season table from the shell.
//
// Usage:
//
//	nbactl career "Stephen Curry"
//	nbactl rankings PTS --season 2022-23 --min-games 20 --limit 10
//	nbactl compare "Stephen Curry" "Kevin Durant"
//	nbactl export-careers --workers 8 > careers.json
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
