package catalog

var builtinRecords = []Record{
	{"Chennai Express", "A man’s journey from Mumbai to Rameswaram turns into an unexpected adventure with a South Indian woman."},
	{"Dilwale", "Two lovers are separated by family rivalry and reunite years later amid chaos and comedy."},
	{"Raees", "A bootlegger becomes a powerful man who challenges corruption and fights for justice."},
	{"Jab Tak Hai Jaan", "An army officer falls in love with a woman, but destiny separates them in a tale of love and sacrifice."},
	{"Pathaan", "An undercover spy returns to protect his country and take revenge against enemies."},
	{"My Name is Khan", "A Muslim man with Asperger’s syndrome embarks on a journey to meet the President of America."},
	{"Om Shanti Om", "A struggling actor falls in love with a superstar and discovers the mystery behind her death."},
	{"Kal Ho Naa Ho", "A cheerful young man spreads happiness while hiding his illness from his loved ones."},
	{"Kabhi Khushi Kabhie Gham", "A rich family’s relationships are tested through love, pride, and forgiveness."},
	{"Veer-Zaara", "An Indian Air Force officer falls in love with a Pakistani woman during a mission."},
}

// Builtin returns the bundled ten-movie catalog.
func Builtin() *Catalog {
	c, err := New(builtinRecords)
	if err != nil {
		panic("catalog: builtin records invalid: " + err.Error())
	}
	return c
}
