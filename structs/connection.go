package structs

//*******************************************
// connection
//*******************************************

// Connection is an undirected track between two stations, Distance is in km.
type Connection struct {
	From     string `json:"from" yaml:"from" csv:"from"`
	To       string `json:"to" yaml:"to" csv:"to"`
	Distance int32  `json:"distance" yaml:"distance" csv:"distance"`
}
