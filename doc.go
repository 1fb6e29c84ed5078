/*
Package colors provides conversion between color spaces (rgb, hsv, hsl, hwb, lab, lch, oklab and oklch),
APCA contrast measurement and lightness matching, palette generation and color vision deficiency simulation.

All conversions route through one of two XYZ hubs (D65 or D50 white) using the adapters in the colorconv
package, see the convert package for the routing itself. Values are plain float64 triples, hues are in degrees
and Lab lightness is in [0, 100].
*/
package colors

// Version of the library.
const Version = "1.0.0"
