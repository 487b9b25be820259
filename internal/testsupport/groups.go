package testsupport

import "dearchive/internal/archive"

// OfficialSource returns a reliable, official source for url.
func OfficialSource(url string) archive.Source {
	return archive.Source{
		Source: url,
		Type:   archive.SourceType{Reliability: archive.Reliable, Origin: archive.Official},
	}
}

// MinimalGroup returns Comiket with a single circle-less event, C95.
func MinimalGroup() archive.EventGroup {
	return archive.EventGroup{
		Aliases: []string{"Comiket"},
		Events: []archive.Event{
			{Aliases: []string{"C95"}, Dates: "2018-12-29"},
		},
	}
}

// SampleGroup returns an event group exercising every optional field. Its
// events are deliberately not in alphabetical order.
func SampleGroup() archive.EventGroup {
	catalog := OfficialSource("https://www.comiket.co.jp/info-a/C96/C96Outline.html")
	return archive.EventGroup{
		Aliases: []string{"Comiket", "コミックマーケット", "Comic Market"},
		Events: []archive.Event{
			{
				Aliases: []string{"C96", "Comic Market 96"},
				Dates:   "2019-08-09,2019-08-12",
				Circles: []archive.Circle{
					{
						Aliases:  []string{"Sakuzyo"},
						PenNames: []string{"削除"},
						Position: "West,a,23b",
						Sources:  []archive.Source{catalog},
						Media: []archive.Medium{
							{
								Path:    "media/C96/sakuzyo_cut.png",
								Sources: []archive.Source{catalog},
							},
						},
						Links: []string{"https://twitter.com/sakuzyo", "https://sakuzyo.example"},
					},
					{
						Aliases:     []string{"Diverse System", "DS"},
						Position:    "East,ネ,12a",
						Comments:    "Shared booth.",
						Description: "Doujin music label.",
					},
				},
				Sources:  []archive.Source{catalog},
				Comments: "Four-day event.",
			},
			{
				Aliases: []string{"C95"},
				Dates:   "2018-12-29,2018-12-31",
				Circles: []archive.Circle{
					{Aliases: []string{"Sakuzyo"}, Position: "East,A,01a"},
				},
			},
			{
				Aliases: []string{"C97"},
				Dates:   "2019-12-28,2019-12-31",
				Sources: []archive.Source{{
					Source:   "https://web.archive.org/web/2019/https://www.comiket.co.jp/",
					Type:     archive.SourceType{Reliability: archive.Likely, Origin: archive.OfficialExt},
					Comments: "Archived copy.",
				}},
			},
		},
		Sources: []archive.Source{OfficialSource("https://www.comiket.co.jp/")},
		Media: []archive.Medium{
			{Path: "media/comiket_logo.svg", Description: "Logo."},
		},
		Links:       []string{"https://www.comiket.co.jp/", "https://twitter.com/comiket_staff"},
		Description: "Twice-yearly doujinshi fair in Tokyo.",
	}
}
