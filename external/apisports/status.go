package apisports

import (
	"strings"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/sport"
)

// FootballStatus covers every short code api-football documents for fixture.status.short.
var FootballStatus = map[string]game.Status{
	"TBD":  game.StatusUpcoming,
	"NS":   game.StatusUpcoming,
	"1H":   game.StatusLive,
	"HT":   game.StatusLive,
	"2H":   game.StatusLive,
	"ET":   game.StatusUpcoming,
	"BT":   game.StatusUpcoming,
	"P":    game.StatusUpcoming,
	"SUSP": game.StatusUpcoming,
	"INT":  game.StatusUpcoming,
	"FT":   game.StatusFinished,
	"AET":  game.StatusFinished,
	"PEN":  game.StatusFinished,
	"PST":  game.StatusUpcoming,
	"CANC": game.StatusUpcoming,
	"ABD":  game.StatusUpcoming,
	"AWD":  game.StatusUpcoming,
	"WO":   game.StatusUpcoming,
	"LIVE": game.StatusUpcoming,
}

// BasketballStatus covers every short code api-basketball documents for status.short.
var BasketballStatus = map[string]game.Status{
	"NS":   game.StatusUpcoming,
	"Q1":   game.StatusLive,
	"Q2":   game.StatusLive,
	"Q3":   game.StatusLive,
	"Q4":   game.StatusLive,
	"OT":   game.StatusUpcoming,
	"BT":   game.StatusUpcoming,
	"HT":   game.StatusLive,
	"FT":   game.StatusFinished,
	"AOT":  game.StatusFinished,
	"POST": game.StatusUpcoming,
	"CANC": game.StatusUpcoming,
	"SUSP": game.StatusUpcoming,
	"AWD":  game.StatusUpcoming,
	"ABD":  game.StatusUpcoming,
}

// StatusFor resolves an upstream short code. Codes outside the table are treated as upcoming.
func StatusFor(key sport.Key, code string) game.Status {
	var table map[string]game.Status
	switch key {
	case sport.KeyFootball:
		table = FootballStatus
	case sport.KeyBasketball:
		table = BasketballStatus
	default:
		return game.StatusUpcoming
	}

	if status, ok := table[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return status
	}
	return game.StatusUpcoming
}
