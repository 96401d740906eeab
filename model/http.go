package model

type GenerateRequestBody struct {
	Key                string      `json:"key"`
	Chords             []string    `json:"chords"`
	NumMeasures        int         `json:"num_measures"`
	TicksPerBeat       int         `json:"ticks_per_beat"`
	BeatsPerMeasure    int         `json:"beats_per_measure"`
	Motif              []MotifNote `json:"motif"`
	NoAccompaniment    bool        `json:"no_accompaniment"`
	AccompanimentStyle string      `json:"accompaniment_style"`
	Form               string      `json:"form"`
	Seed               int64       `json:"seed"`
}

type CatalogResponse struct {
	Keys       []string `json:"keys"`
	Chords     []string `json:"chords"`
	Transforms []string `json:"transforms"`
	Styles     []string `json:"styles"`
	Forms      []string `json:"forms"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
