// Package youtube is the in-process transcript source. It reads the caption
// track list from the player response embedded in a video's watch page and
// fetches the timed-text XML of a selected track.
//
//	src, err := youtube.New(youtube.Config{}, log)
//	svc := transcript.NewService("youtube", src, transcript.Config{}, log)
//	res, err := svc.Resolve(ctx, transcript.Request{VideoID: "dQw4w9WgXcQ"})
package youtube
