// Package gradient turns a sampled color profile into linear-gradient stops.
//
// Two steps are involved. Resolve (or ParseSpacing + StopCount) turns a
// spacing such as "25%", "100px" or "100" into a stop count; a Generator
// then places that many stops over the 0-100% axis and picks their colors
// from the profile. Default, Simple and Complex are the built-in generators;
// any GeneratorFunc can stand in for them.
package gradient
