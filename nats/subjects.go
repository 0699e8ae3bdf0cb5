package nats

import "fmt"

/**
Each table uses three subjects:
craps.<code>.events : resolution events published by the table
craps.<code>.bet    : request/reply, a JSON game.BetRequest
craps.<code>.roll   : request/reply, empty request, replies with the roll result
*/

func GetTableEventSubject(tableCode string) string {
	return fmt.Sprintf("craps.%s.events", tableCode)
}

func GetBetSubject(tableCode string) string {
	return fmt.Sprintf("craps.%s.bet", tableCode)
}

func GetRollSubject(tableCode string) string {
	return fmt.Sprintf("craps.%s.roll", tableCode)
}
