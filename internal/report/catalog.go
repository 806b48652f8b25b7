package report

// Alias maps one source identifier onto one or more canonical columns.
// Identifier is matched against line-item codes or free-text names; the two
// namespaces overlap in historical data, so an alias may be registered as
// both.
type Alias struct {
	Code    string
	Name    string
	Columns []string
}

// Catalog is the immutable code/name alias table. It is plain data with no
// behavior beyond lookup, injected into the resolver so it can be swapped in
// tests and versioned independently.
type Catalog struct {
	byCode map[string][]string
	byName map[string][]string
}

// NewCatalog builds a catalog from alias entries. Aliases naming an unknown
// canonical column are dropped rather than corrupting the table.
func NewCatalog(aliases []Alias) Catalog {
	c := Catalog{
		byCode: make(map[string][]string),
		byName: make(map[string][]string),
	}
	for _, a := range aliases {
		cols := make([]string, 0, len(a.Columns))
		for _, col := range a.Columns {
			if IsColumn(col) {
				cols = append(cols, col)
			}
		}
		if len(cols) == 0 {
			continue
		}
		if a.Code != "" {
			c.byCode[a.Code] = append(c.byCode[a.Code], cols...)
		}
		if a.Name != "" {
			c.byName[a.Name] = append(c.byName[a.Name], cols...)
		}
	}
	return c
}

// Resolve maps a source identifier to canonical columns: exact code match
// first, exact name match second. An empty result is a partial-resolution
// signal, not an error.
func (c Catalog) Resolve(identifier string) []string {
	if identifier == "" {
		return nil
	}
	if cols, ok := c.byCode[identifier]; ok {
		return cols
	}
	if cols, ok := c.byName[identifier]; ok {
		return cols
	}
	return nil
}

// DefaultCatalog returns the production alias table. Every canonical column
// is resolvable by its own name; the code entries cover the billing codes
// the ordering screens have emitted over the years, including retired ones.
func DefaultCatalog() Catalog {
	aliases := []Alias{
		{Code: "CBC001", Name: "Complete Blood Count", Columns: []string{"CBC"}},
		{Code: "HB001", Name: "Hemoglobin", Columns: []string{"Hb"}},
		{Code: "HCT001", Name: "Hematocrit", Columns: []string{"Hct"}},
		{Code: "WBC001", Name: "White Blood Cell Count", Columns: []string{"WBC"}},
		{Code: "PLT001", Name: "Platelet", Columns: []string{"Platelet Count"}},
		{Code: "ABO001", Name: "ABO Grouping", Columns: []string{"Blood Group"}},
		{Code: "RH001", Name: "Rh Typing", Columns: []string{"Rh Group"}},
		{Code: "ESR001", Columns: []string{"ESR"}},
		{Code: "CRP001", Name: "C-Reactive Protein", Columns: []string{"CRP"}},
		{Code: "GLU001", Name: "Fasting Blood Sugar", Columns: []string{"FBS"}},
		{Code: "HBA1C", Name: "Glycated Hemoglobin", Columns: []string{"HbA1c"}},
		{Code: "BUN001", Columns: []string{"BUN"}},
		{Code: "CRE001", Name: "Serum Creatinine", Columns: []string{"Creatinine", "eGFR"}},
		{Code: "UA001", Columns: []string{"Uric Acid"}},
		{Code: "CHOL01", Name: "Total Cholesterol", Columns: []string{"Cholesterol"}},
		{Code: "TG001", Columns: []string{"Triglyceride"}},
		{Code: "HDL001", Name: "HDL Cholesterol", Columns: []string{"HDL"}},
		{Code: "LDL001", Name: "LDL Cholesterol", Columns: []string{"LDL"}},
		{Code: "AST001", Name: "SGOT", Columns: []string{"AST"}},
		{Code: "ALT001", Name: "SGPT", Columns: []string{"ALT"}},
		{Code: "ALP001", Name: "Alkaline Phosphatase", Columns: []string{"ALP"}},
		{Code: "GGT001", Name: "Gamma GT", Columns: []string{"GGT"}},
		{Code: "TP001", Columns: []string{"Total Protein"}},
		{Code: "ALB001", Columns: []string{"Albumin"}},
		{Code: "GLO001", Columns: []string{"Globulin"}},
		{Code: "TB001", Columns: []string{"Total Bilirubin"}},
		{Code: "DB001", Columns: []string{"Direct Bilirubin"}},
		{Code: "LFT001", Name: "Liver Function Test", Columns: []string{
			"AST", "ALT", "ALP", "Total Protein", "Albumin", "Globulin",
			"Total Bilirubin", "Direct Bilirubin",
		}},
		{Code: "ELEC01", Name: "Electrolytes", Columns: []string{
			"Sodium", "Potassium", "Chloride", "Bicarbonate",
		}},
		{Code: "NA001", Columns: []string{"Sodium"}},
		{Code: "K001", Columns: []string{"Potassium"}},
		{Code: "CL001", Columns: []string{"Chloride"}},
		{Code: "CO2001", Columns: []string{"Bicarbonate"}},
		{Code: "CA001", Columns: []string{"Calcium"}},
		{Code: "PHO001", Columns: []string{"Phosphorus"}},
		{Code: "MG001", Columns: []string{"Magnesium"}},
		{Code: "AMY001", Columns: []string{"Amylase"}},
		{Code: "LIP001", Columns: []string{"Lipase"}},
		{Code: "LDH001", Columns: []string{"LDH"}},
		{Code: "CK001", Name: "Creatine Kinase", Columns: []string{"CK"}},
		{Code: "CKMB01", Columns: []string{"CK-MB"}},
		{Code: "TROP01", Name: "Troponin", Columns: []string{"Troponin I"}},
		{Code: "DD001", Columns: []string{"D-Dimer"}},
		{Code: "PT001", Name: "Prothrombin Time", Columns: []string{"PT", "INR"}},
		{Code: "PTT001", Name: "Partial Thromboplastin Time", Columns: []string{"PTT"}},
		{Code: "UA100", Name: "Urine Examination", Columns: []string{"Urinalysis"}},
		{Code: "UPT001", Name: "Pregnancy Test", Columns: []string{"Urine Pregnancy"}},
		{Code: "MAU001", Columns: []string{"Urine Microalbumin"}},
		{Code: "STL001", Name: "Stool Exam", Columns: []string{"Stool Examination"}},
		{Code: "OB001", Name: "Occult Blood", Columns: []string{"Stool Occult Blood"}},
		{Code: "HBS001", Columns: []string{"HBsAg"}},
		{Code: "HBSAB1", Name: "Anti-HBs", Columns: []string{"HBsAb"}},
		{Code: "HBCAB1", Name: "Anti-HBc", Columns: []string{"HBcAb"}},
		{Code: "HAV001", Name: "Anti-HAV IgM", Columns: []string{"HAV IgM"}},
		{Code: "HCV001", Name: "Anti-HCV", Columns: []string{"HCV Ab"}},
		{Code: "HIV001", Name: "HIV Screening", Columns: []string{"HIV Ag/Ab"}},
		{Code: "VDRL01", Name: "RPR", Columns: []string{"VDRL"}},
		{Code: "TPHA01", Columns: []string{"TPHA"}},
		{Code: "FLUA01", Name: "Influenza A Antigen", Columns: []string{"Influenza A"}},
		{Code: "FLUB01", Name: "Influenza B Antigen", Columns: []string{"Influenza B"}},
		{Code: "RSV001", Name: "RSV Antigen", Columns: []string{"RSV"}},
		{Code: "COVAG1", Name: "SARS-CoV-2 Antigen", Columns: []string{"Covid-19 Antigen"}},
		{Code: "COVPC1", Name: "SARS-CoV-2 RT-PCR", Columns: []string{"Covid-19 PCR"}},
		{Code: "DNS101", Columns: []string{"Dengue NS1"}},
		{Code: "DIGM01", Columns: []string{"Dengue IgM"}},
		{Code: "DIGG01", Columns: []string{"Dengue IgG"}},
		{Code: "LIGM01", Columns: []string{"Leptospira IgM"}},
		{Code: "LIGG01", Columns: []string{"Leptospira IgG"}},
		{Code: "SCR001", Name: "Scrub Typhus Ab", Columns: []string{"Scrub Typhus"}},
		{Code: "MAL001", Name: "Malaria Smear", Columns: []string{"Malaria"}},
		{Code: "WID001", Columns: []string{"Widal Test"}},
		{Code: "MEL001", Columns: []string{"Melioidosis Ab"}},
		{Code: "CHK001", Columns: []string{"Chikungunya IgM"}},
		{Code: "TSH001", Columns: []string{"TSH"}},
		{Code: "FT3001", Columns: []string{"Free T3"}},
		{Code: "FT4001", Columns: []string{"Free T4"}},
		{Code: "THY001", Name: "Thyroid Function Test", Columns: []string{"TSH", "Free T3", "Free T4"}},
		{Code: "COR001", Columns: []string{"Cortisol"}},
		{Code: "VITD01", Name: "25-OH Vitamin D", Columns: []string{"Vitamin D"}},
		{Code: "B12001", Columns: []string{"Vitamin B12"}},
		{Code: "FOL001", Columns: []string{"Folate"}},
		{Code: "FER001", Columns: []string{"Ferritin"}},
		{Code: "FE001", Name: "Serum Iron", Columns: []string{"Iron"}},
		{Code: "TIBC01", Columns: []string{"TIBC"}},
		{Code: "PSA001", Columns: []string{"PSA"}},
		{Code: "CEA001", Columns: []string{"CEA"}},
		{Code: "AFP001", Columns: []string{"AFP"}},
		{Code: "CA199", Columns: []string{"CA 19-9"}},
		{Code: "CA125", Columns: []string{"CA 125"}},
		{Code: "HCG001", Columns: []string{"Beta hCG"}},
		{Code: "RF001", Columns: []string{"Rheumatoid Factor"}},
		{Code: "ANA001", Columns: []string{"ANA"}},
		{Code: "CXR001", Name: "Chest Film", Columns: []string{"Chest X-Ray"}},
		{Code: "EKG001", Name: "Electrocardiogram", Columns: []string{"EKG"}},
	}
	// Every canonical column resolves by its own name.
	for _, col := range Columns {
		aliases = append(aliases, Alias{Name: col, Columns: []string{col}})
	}
	return NewCatalog(aliases)
}
