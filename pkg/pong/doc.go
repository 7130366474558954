// Package pong provides a client for the startuppong.com ladder API.
//
// # Overview
//
// The package exposes the four remote operations the service offers:
// fetching the leaderboard, fetching recent match history, submitting a
// match result, and a best-effort name-to-id resolution built on the
// leaderboard since the service has no search endpoint.
//
// # Usage
//
//	account, err := pong.AccountFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := pong.NewClient(account)
//
//	players, err := client.GetPlayers(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range players.Players {
//	    fmt.Printf("%d (%.1f) - %s\n", p.Rank, p.Rating, p.Name)
//	}
//
//	// Record a match by name fragment instead of numeric id.
//	err = client.AddMatchWithNames(ctx, "Collin", "Joe")
//
// # Credentials
//
// Every call authenticates with an account id / access key pair. Construct
// an [Account] directly, from the STARTUPPONG_ACCOUNT_ID and
// STARTUPPONG_ACCESS_KEY environment variables via [AccountFromEnv], or
// from an injected lookup via [AccountFromLookup].
//
// # Name Resolution
//
// [Client.PlayerIDs] matches fragments case-sensitively as substrings
// against player names, taking the first match in the order the service
// returned the list. Ambiguity is resolved silently; only a fragment with
// no match at all is an error.
//
// # Errors
//
// Every failure is returned as a structured error from the errors package,
// with the underlying cause preserved. Nothing is logged, retried, or
// suppressed internally; callers decide what is recoverable.
package pong
