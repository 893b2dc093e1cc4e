package render

// Style holds the cosmetic attributes of the generated graphs.
type Style struct {
	FontSize  int
	NodeStyle string
	FillColor string

	FunctionColor   string
	DataSourceColor string
	ObjectColor     string
	ThreadColor     string
	StateColor      string
}

// DefaultStyle returns the stock look: blue functions, green data sources,
// red threads and states.
func DefaultStyle() Style {
	return Style{
		FontSize:        12,
		NodeStyle:       "filled",
		FillColor:       "white",
		FunctionColor:   "blue",
		DataSourceColor: "darkgreen",
		ObjectColor:     "black",
		ThreadColor:     "red",
		StateColor:      "red",
	}
}
