// Command transcript prints the transcript of a YouTube video.
//
//	transcript --video-id dQw4w9WgXcQ --lang en,de
//	transcript --video-id dQw4w9WgXcQ --json
//	transcript mcp
//
// With --json the response envelope is written to stdout for both outcomes,
// which is the contract the subprocess backend of transcriptd relies on.
// The exit status is 0 on success and 1 on any failure.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, newYouTubeResolver))
}
