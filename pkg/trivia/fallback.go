package trivia

import "os"

// fallbackPool is served whenever the upstream model cannot be reached or
// returns something unusable. Five fixed items spanning math, science,
// literature, and computing.
var fallbackPool = []Item{
	{Prompt: "If f(x) = 2x^2 - 3x + 1, what is f(3)?", Solution: "10"},
	{Prompt: "Which planet has the strongest surface gravity among Earth, Mars, and Jupiter?", Solution: "Jupiter"},
	{Prompt: "Who wrote the play 'Hamlet'?", Solution: "William Shakespeare"},
	{Prompt: "In chemistry, what is the pH of a neutral solution at 25°C?", Solution: "7"},
	{Prompt: "What is the Big-O time complexity of binary search on a sorted array?", Solution: "O(log n)"},
}

// FallbackPool returns a copy of the built-in items.
func FallbackPool() []Item {
	pool := make([]Item, len(fallbackPool))
	copy(pool, fallbackPool)
	return pool
}

// SelectFallback picks the pool entry for the given host and port
// identifiers. The index depends only on the lengths of the two strings,
// so a given deployment always serves the same item.
func SelectFallback(hostname, port string) Item {
	idx := (len(hostname) + len(port)) % len(fallbackPool)
	return fallbackPool[idx]
}

// EnvIdentity reads the deployment identity that seeds fallback
// selection. Unset variables get one-character defaults; set-but-empty
// values count with length zero.
func EnvIdentity() (hostname, port string) {
	hostname, ok := os.LookupEnv("HOSTNAME")
	if !ok {
		hostname = "x"
	}
	port, ok = os.LookupEnv("PORT")
	if !ok {
		port = "0"
	}
	return hostname, port
}
