package content

// Stat is a highlighted figure in the hero section.
type Stat struct {
	Value string
	Label string
	Desc  string
}

// Hero is the copy of the top of the page.
type Hero struct {
	Badge     string
	Headlines []string
	Lead      string
	Highlight string
	Stats     []Stat
	CTA       string
}

// Footer is the copy at the bottom of the page.
type Footer struct {
	Copyright string
	Motto     []string
}

// Landing returns the hero copy.
func Landing() Hero {
	return Hero{
		Badge:     "Programme Nouvelle Génération",
		Headlines: []string{"Construire Plus Vite.", "Livrer Plus Smart."},
		Lead: "Douze semaines pour devenir un développeur complet, outillé par l'IA et " +
			"prêt pour le marché mondial, hautement",
		Highlight: "employable",
		Stats: []Stat{
			{Value: "Sessions Live", Label: "Chaque Semaine", Desc: "Deep-dives IA & Dev"},
			{Value: "Projets Réels", Label: "Portfolio Pro", Desc: "Prêts à montrer"},
			{Value: "Top Performers", Label: "Missions Réelles", Desc: "Freelancing garanti"},
		},
		CTA: "Explorer le Programme",
	}
}

// PageFooter returns the footer copy.
func PageFooter() Footer {
	return Footer{
		Copyright: "© 2025 Bootcamp. Conçu pour les développeurs africains.",
		Motto:     []string{"Apprendre", "Construire", "Gagner", "Grandir"},
	}
}
