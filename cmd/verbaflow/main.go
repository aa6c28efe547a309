package main

import "verbaflow/cmd/verbaflow/cmd"

// @title VerbaFlow API
// @version 1.0
// @description Local API for transcribing audio and video files and managing the transcription history.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cmd.Execute()
}
