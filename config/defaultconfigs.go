package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawIdleEdges: true,
		Colors: ConfigColors{
			BoardColor:     230,
			DotColor:       232,
			LineColor:      236,
			IdleColor:      250,
			HighlightColor: 109,
			PlayerOne:      174,
			PlayerTwo:      114,
		},
		Symbols: ConfigSymbols{
			Dot:  '●',
			Idle: '·',
		},
		Layout: Layout{
			UnitWidth:  10,
			UnitHeight: 5,
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Snapshot: SnapshotConfig{
			UnitPixels: 80,
		},
		Players: PlayerConfig{
			One: "Player One",
			Two: "Player Two",
		},
	}
}
