package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs
var DefaultAssumptions = []string{
	"Rates are deterministic and held constant for the whole horizon",
	"Monthly plans compound monthly at the annual rate divided by 12",
	"Money is rounded to whole units only in the reported results",
	"Tax savings use the 2024 single-filer federal brackets, first year only",
	"401(k) and Roth IRA contributions are capped at the 2024 annual limits",
	"No currency conversion and no stochastic returns",
}
