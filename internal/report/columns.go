package report

// Columns is the canonical, ordered column set of the test-matrix report.
// The order is the left-to-right order of the rendered table and the export.
// Names are load-bearing: historical exports key on them, so entries must
// never be renamed or reordered, only appended.
var Columns = []string{
	"CBC",
	"Hb",
	"Hct",
	"WBC",
	"Platelet Count",
	"Blood Group",
	"Rh Group",
	"ESR",
	"CRP",
	"FBS",
	"HbA1c",
	"BUN",
	"Creatinine",
	"eGFR",
	"Uric Acid",
	"Cholesterol",
	"Triglyceride",
	"HDL",
	"LDL",
	"AST",
	"ALT",
	"ALP",
	"GGT",
	"Total Protein",
	"Albumin",
	"Globulin",
	"Total Bilirubin",
	"Direct Bilirubin",
	"Sodium",
	"Potassium",
	"Chloride",
	"Bicarbonate",
	"Calcium",
	"Phosphorus",
	"Magnesium",
	"Amylase",
	"Lipase",
	"LDH",
	"CK",
	"CK-MB",
	"Troponin I",
	"D-Dimer",
	"PT",
	"PTT",
	"INR",
	"Urinalysis",
	"Urine Pregnancy",
	"Urine Microalbumin",
	"Stool Examination",
	"Stool Occult Blood",
	"HBsAg",
	"HBsAb",
	"HBcAb",
	"HAV IgM",
	"HCV Ab",
	"HIV Ag/Ab",
	"VDRL",
	"TPHA",
	"Influenza A",
	"Influenza B",
	"RSV",
	"Covid-19 Antigen",
	"Covid-19 PCR",
	"Dengue NS1",
	"Dengue IgM",
	"Dengue IgG",
	"Leptospira IgM",
	"Leptospira IgG",
	"Scrub Typhus",
	"Malaria",
	"Widal Test",
	"Melioidosis Ab",
	"Chikungunya IgM",
	"TSH",
	"Free T3",
	"Free T4",
	"Cortisol",
	"Vitamin D",
	"Vitamin B12",
	"Folate",
	"Ferritin",
	"Iron",
	"TIBC",
	"PSA",
	"CEA",
	"AFP",
	"CA 19-9",
	"CA 125",
	"Beta hCG",
	"Rheumatoid Factor",
	"ANA",
	"Chest X-Ray",
	"EKG",
}

// columnSet is used to reject aliases pointing at columns that do not exist.
var columnSet = func() map[string]bool {
	m := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		m[c] = true
	}
	return m
}()

// IsColumn reports whether name is a canonical column.
func IsColumn(name string) bool {
	return columnSet[name]
}
