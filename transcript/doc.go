// Package transcript resolves a video id and an ordered list of preferred
// languages into one transcript, or into exactly one classified failure.
//
// A Source enumerates the caption tracks of a video; SelectTrack picks one
// (preferred languages in order, manual captions before generated ones,
// falling back to the first track when nothing matches); the chosen track's
// fragments are joined with single spaces into Result.Text.
//
// Every failure leaving Service.Resolve is an *errors.AppError with one of
// six codes (InvalidRequest, TranscriptsDisabled, NoTranscriptFound,
// ProviderUnavailable, Timeout, Unknown). Transports render it with Fail and
// StatusCode.
package transcript
