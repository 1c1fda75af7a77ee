package service

import "math/rand"

var motivationalQuotes = []string{
	"The only bad workout is the one that didn't happen.",
	"Your body can stand almost anything. It's your mind you have to convince.",
	"The hard days are the best because that's when champions are made.",
	"Success starts with self-discipline.",
	"Your health is an investment, not an expense.",
	"Don't wish for it, work for it.",
	"Strength does not come from physical capacity. It comes from an indomitable will.",
	"The only person you are destined to become is the person you decide to be.",
	"Take care of your body. It's the only place you have to live.",
	"Exercise is king. Nutrition is queen. Put them together and you've got a kingdom.",
}

// RandomQuote returns one of the fixed motivational quotes.
func RandomQuote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}
