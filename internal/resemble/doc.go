// Package resemble rewrites resemble-image() calls into linear gradients.
//
// A call such as
//
//	background: resemble-image(url("hero.jpg"), 20%);
//
// is replaced by a linear-gradient that approximates the horizontal color
// profile of hero.jpg, one stop every 20% of its width:
//
//	background: linear-gradient(90deg, #3c4a5e 0%, #566b80 25%, ...);
//
// The spacing argument may be a percentage of the image width, or a length
// or bare number measured in source pixels (the unit is ignored). Without
// it the configured fidelity applies. Other layers of a multi-background
// value are left untouched, and values without a call pass through
// byte-identical.
//
// Loading, decoding and invalid spacing are fatal for the declaration: the
// error is returned and nothing is rewritten. See ErrLoad, ErrDecode and
// ErrInvalidFidelity.
//
// Debug logging goes to the zerolog.Logger carried by the context, if any.
package resemble
