package library

// computingLibrary covers introductory programming material. The domain is
// flagged for disambiguation because many of its terms ("promise", "state",
// "object") are common English words; a mention only counts when its context
// window carries the term-specific patterns below, or generic code syntax.
var computingLibrary = &Library{
	Domain:       "computing",
	Disambiguate: true,
	Concepts: []ConceptDefinition{
		{Name: "variable", Aliases: []string{"variables"}, Category: "fundamentals", Importance: "core",
			Description: "A named storage location whose value can change during program execution"},
		{Name: "function", Aliases: []string{"functions", "subroutine"}, Category: "fundamentals", Importance: "core",
			Description: "A reusable block of code that performs a task and may return a value"},
		{Name: "object", Aliases: []string{"objects"}, Category: "fundamentals", Importance: "core",
			Description: "A collection of related data and behavior accessed through properties and methods"},
		{Name: "array", Aliases: []string{"arrays"}, Category: "data structures", Importance: "core",
			Description: "An ordered collection of values addressed by index"},
		{Name: "loop", Aliases: []string{"loops", "iteration"}, Category: "control flow", Importance: "core",
			Description: "A construct that repeats a block of code while a condition holds"},
		{Name: "conditional", Aliases: []string{"conditionals", "if statement"}, Category: "control flow", Importance: "supporting",
			Description: "A construct that selects between branches of code based on a boolean test"},
		{Name: "closure", Aliases: []string{"closures"}, Category: "functions", Importance: "supporting",
			Description: "A function bundled with the lexical environment it was created in"},
		{Name: "promise", Aliases: []string{"promises"}, Category: "asynchronous", Importance: "supporting",
			Description: "An object representing the eventual completion or failure of an asynchronous operation"},
		{Name: "callback", Aliases: []string{"callbacks"}, Category: "asynchronous", Importance: "supporting",
			Description: "A function passed to another function to be invoked later"},
		{Name: "recursion", Aliases: []string{"recursive"}, Category: "functions", Importance: "supporting",
			Description: "A technique where a function calls itself to solve smaller instances of a problem"},
		{Name: "scope", Aliases: []string{"scoping"}, Category: "fundamentals", Importance: "supporting",
			Description: "The region of a program where a binding is visible"},
		{Name: "state", Aliases: []string{}, Category: "fundamentals", Importance: "detail",
			Description: "The data held by a program or component at a point in time"},
		{Name: "prototype", Aliases: []string{"prototypes"}, Category: "objects", Importance: "detail",
			Description: "The object another object delegates to for property lookup"},
		{Name: "event loop", Aliases: []string{"event-loop"}, Category: "asynchronous", Importance: "detail",
			Description: "The runtime mechanism that dispatches queued tasks and callbacks"},
	},
	TermPatterns: map[string][]string{
		"promise":  {`async`, `await`, `\.then\(`, `\.catch\(`, `new Promise\(`, `resolve`, `reject`},
		"function": {`\(\)`, `return`, `=>`, `parameter`, `argument`, `invoke`, `call`},
		"state":    {`setState`, `mutat`, `immutable`, `component`, `store`, `variable`},
		"object":   {`propert`, `method`, `\.create\(`, `key`, `value`, `instance`, `class`},
		"variable": {`declare`, `assign`, `let `, `const `, `var `, `value`},
		"array":    {`\[`, `index`, `element`, `\.push\(`, `\.map\(`, `length`},
		"loop":     {`for `, `while `, `iterat`, `break`, `continue`, `each`},
		"scope":    {`block`, `global`, `local`, `lexical`, `binding`, `declare`},
		"closure":  {`function`, `lexical`, `enclos`, `capture`, `return`},
	},
}
