// SPDX-License-Identifier: MIT

package cities

import "github.com/katalvlaran/tspanneal/sa"

// Fixture16Optimal is the exact optimal cycle length of Fixture16
// (Held–Karp). Annealing with 10000 / 1e-2 / 0.98 has reached it.
const Fixture16Optimal = 3773.32054657807

// fixture16 is the fixed 16-city regression instance.
var fixture16 = [][2]float64{
	{947.3612445509046, 872.9585107695043},
	{942.8609024631703, 151.5408509461057},
	{944.7317526958012, 123.33296895218825},
	{212.57740899784116, 653.9571002434129},
	{188.3908379453012, 349.25288255239786},
	{209.70695797968696, 286.9696061099798},
	{275.8040347314483, 17.565098727461482},
	{406.7735035187862, 20.57622842965612},
	{853.7323446491461, 123.48985777584132},
	{867.7433164109344, 311.98198704313063},
	{962.0845394904624, 447.4731786842732},
	{593.2445091792242, 408.3265323472042},
	{569.3824107564518, 485.2592895044864},
	{364.56046603040005, 732.5706121326565},
	{118.60599689859053, 883.4367479820525},
	{129.40647626991887, 965.4524857132357},
}

// Fixture16 returns the 16-city instance labelled "1".."16".
func Fixture16() []sa.Point {
	pts := make([]sa.Point, len(fixture16))
	for i, c := range fixture16 {
		pts[i] = sa.Point{X: c[0], Y: c[1], ID: DefaultIDFn(i)}
	}

	return pts
}

// UnitSquare returns the corners of the unit square A(0,0) B(1,0) C(1,1)
// D(0,1); the optimal tour is the perimeter, length 4.
func UnitSquare() []sa.Point {
	return []sa.Point{
		{X: 0, Y: 0, ID: "A"},
		{X: 1, Y: 0, ID: "B"},
		{X: 1, Y: 1, ID: "C"},
		{X: 0, Y: 1, ID: "D"},
	}
}
