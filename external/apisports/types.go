package apisports

import "encoding/json"

// envelope is the wrapper every api-sports endpoint returns.
type envelope struct {
	Get        string          `json:"get"`
	Parameters any             `json:"parameters"`
	Errors     any             `json:"errors"`
	Results    int             `json:"results"`
	Response   json.RawMessage `json:"response"`
}

type teamRef struct {
	ID   *int64  `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type footballFixtureItem struct {
	Fixture struct {
		ID    *int64 `json:"id"`
		Date  string `json:"date"`
		Venue struct {
			Name *string `json:"name"`
		} `json:"venue"`
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      *int64  `json:"id"`
		Name    string  `json:"name"`
		Logo    *string `json:"logo"`
		Country string  `json:"country"`
	} `json:"league"`
	Teams struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type basketballGameItem struct {
	ID     *int64 `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status struct {
		Short string `json:"short"`
	} `json:"status"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
	League struct {
		ID   *int64  `json:"id"`
		Name string  `json:"name"`
		Logo *string `json:"logo"`
	} `json:"league"`
	Teams struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Scores struct {
		Home struct {
			Total *int `json:"total"`
		} `json:"home"`
		Away struct {
			Total *int `json:"total"`
		} `json:"away"`
	} `json:"scores"`
}

type footballLeagueItem struct {
	League struct {
		ID   *int64  `json:"id"`
		Name string  `json:"name"`
		Logo *string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
}

type basketballLeagueItem struct {
	ID      *int64  `json:"id"`
	Name    string  `json:"name"`
	Logo    *string `json:"logo"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
}
