// Package pagedex provides a Go client for the pagedex JSON API.
//
// pagedex serves a blog, a portfolio and a ranked C++ method reference
// ("lyah") built from published content documents.
//
//	client, _ := pagedex.New("https://pagedex.example.com")
//	res, _ := client.SearchMethods(ctx, "sqrt", pagedex.WithStandard(2020))
//	for _, m := range res.Items {
//	    fmt.Println(m.Score, m.FormattedSignature)
//	}
//
// Admin operations need an API key:
//
//	admin, _ := pagedex.New(baseURL, pagedex.WithAPIKey(os.Getenv("PAGEDEX_API_KEY")))
//	purged, _ := admin.PurgeCache(ctx)
package pagedex
