package webui

// Headline is one of the highlighted figures above the charts.
type Headline struct {
	Figure string
	Lines  []string
	Source string
}

var headlines = []Headline{
	{
		Figure: "1.5°C",
		Lines:  []string{"will be exceeded by 2035."},
		Source: "United Nations",
	},
	{
		Figure: "70%",
		Lines: []string{
			"of the annual energy-related CO2 emissions need to decline",
			"below today's levels to meet the net-zero climate goal.",
		},
		Source: "United Nations Development Programme",
	},
	{
		Figure: "73%",
		Lines: []string{
			"of global greenhouse gas emissions originated",
			"from the energy sector.",
		},
		Source: "United Nations Development Programme",
	},
	{
		Figure: "$4 trillion",
		Lines:  []string{"are needed to reach net-zero by 2050."},
		Source: "United Nations Development Programme",
	},
}
