package properties

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders n with en-US digit grouping, e.g. 80,000.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatCurrency renders n as whole US dollars, e.g. $87,983.
func FormatCurrency(n int) string {
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

func displayDemographics(p Property) DemographicsDisplay {
	d := p.Demographics
	out := DemographicsDisplay{
		DailyTraffic:    FormatNumber(d.DailyTraffic),
		Population1Mile: FormatNumber(d.Population1Mile),
		Population3Mile: FormatNumber(d.Population3Mile),
		Population5Mile: FormatNumber(d.Population5Mile),
		AvgIncome1Mile:  FormatCurrency(d.AvgIncome1Mile),
		AvgIncome3Mile:  FormatCurrency(d.AvgIncome3Mile),
		AvgIncome5Mile:  FormatCurrency(d.AvgIncome5Mile),
	}
	if p.Details.TotalSF > 0 {
		out.TotalSF = FormatNumber(p.Details.TotalSF)
	}
	return out
}
