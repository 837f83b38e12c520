package library

// chemistryLibrary covers general chemistry chapters. Chemistry terms rarely
// collide with everyday English, so the domain is not disambiguated.
var chemistryLibrary = &Library{
	Domain: "chemistry",
	Concepts: []ConceptDefinition{
		{Name: "atom", Aliases: []string{"atoms", "atomic"}, Category: "structure", Importance: "core",
			Description: "The smallest unit of an element that retains its chemical identity"},
		{Name: "molecule", Aliases: []string{"molecules", "molecular"}, Category: "structure", Importance: "core",
			Description: "Two or more atoms held together by chemical bonds"},
		{Name: "element", Aliases: []string{"elements"}, Category: "structure", Importance: "core",
			Description: "A pure substance consisting of a single kind of atom"},
		{Name: "chemical bond", Aliases: []string{"chemical bonds", "bonding"}, Category: "bonding", Importance: "core",
			Description: "An attraction between atoms that allows the formation of substances"},
		{Name: "ionic bond", Aliases: []string{"ionic bonds", "ionic bonding"}, Category: "bonding", Importance: "supporting",
			Description: "A bond formed by electrostatic attraction between oppositely charged ions"},
		{Name: "covalent bond", Aliases: []string{"covalent bonds", "covalent bonding"}, Category: "bonding", Importance: "supporting",
			Description: "A bond formed by sharing electron pairs between atoms"},
		{Name: "valence electrons", Aliases: []string{"valence electron", "valence shell"}, Category: "structure", Importance: "supporting",
			Description: "The outer-shell electrons that participate in bonding"},
		{Name: "ion", Aliases: []string{"ions", "cation", "anion"}, Category: "structure", Importance: "supporting",
			Description: "An atom or molecule carrying a net electric charge"},
		{Name: "electronegativity", Aliases: []string{"electronegative"}, Category: "periodicity", Importance: "supporting",
			Description: "The tendency of an atom to attract shared electrons"},
		{Name: "periodic table", Aliases: []string{"periodic law"}, Category: "periodicity", Importance: "supporting",
			Description: "The tabular arrangement of elements by atomic number and properties"},
		{Name: "chemical reaction", Aliases: []string{"chemical reactions", "reaction"}, Category: "reactions", Importance: "core",
			Description: "A process converting reactants into products by rearranging bonds"},
		{Name: "osmosis", Aliases: []string{"osmotic"}, Category: "solutions", Importance: "detail",
			Description: "The movement of solvent molecules across a semipermeable membrane"},
		{Name: "solution", Aliases: []string{"solutions", "solute", "solvent"}, Category: "solutions", Importance: "detail",
			Description: "A homogeneous mixture of two or more substances"},
	},
}
