// Package httpclient fetches third-party pages and documents over GET.
//
// Every failure is an *Error with a Kind (timeout, rate limit, blocked, ...)
// so callers can map transport faults onto their own taxonomy without
// looking at status codes.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://www.youtube.com",
//	    Headers: map[string]string{"Accept-Language": "en-US"},
//	})
//	resp, err := client.Get(ctx, httpclient.Request{Path: "/watch", Query: map[string]string{"v": id}})
//	if httpclient.IsRateLimit(err) {
//	    ...
//	}
package httpclient
