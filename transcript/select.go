package transcript

import "context"

// SelectTrack picks the track to fetch. For each preferred code in order, a
// manually authored track wins over a generated one with the same code. When
// no preferred code matches, the first track is returned. Codes compare
// exactly. It reports false only when tracks is empty.
func SelectTrack(tracks []Track, languages []string) (Track, bool) {
	if len(tracks) == 0 {
		return nil, false
	}
	for _, code := range languages {
		var generated Track
		for _, t := range tracks {
			if t.LanguageCode() != code {
				continue
			}
			if !t.Generated() {
				return t, true
			}
			if generated == nil {
				generated = t
			}
		}
		if generated != nil {
			return generated, true
		}
	}
	return tracks[0], true
}

// FetchDirect lists the tracks of videoID, selects one and fetches its
// fragments. The returned language is the code of the selected track.
func FetchDirect(ctx context.Context, source Source, videoID string, languages []string) (string, []Fragment, error) {
	tracks, err := source.ListTranscripts(ctx, videoID)
	if err != nil {
		return "", nil, err
	}
	track, ok := SelectTrack(tracks, languages)
	if !ok {
		return "", nil, ErrNoTranscriptFound
	}
	fragments, err := track.Fetch(ctx)
	if err != nil {
		return "", nil, err
	}
	return track.LanguageCode(), fragments, nil
}
