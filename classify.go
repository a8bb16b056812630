/*
 * classify.go, part of gopucker
 *
 * Copyright 2024 The gopucker authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package pucker

import "math"

// Labels for the five canonical conformational families of six-membered
// rings.
const (
	Chair     = "Chair (C)"
	Boat      = "Boat (B)"
	TwistBoat = "Twist-Boat (TB)"
	HalfChair = "Half-Chair (HC)"
	HalfBoat  = "Half-Boat (HB)"
)

//A conformational family and its landmark angles on the puckering sphere.
//A nil phi list means phi does not discriminate for this family (pole-like
//families), so the query's own phi is used as reference.
type family struct {
	label  string
	thetas []float64
	phis   []float64
}

//Enumeration order breaks distance ties, so it is part of the contract.
var families = []family{
	{Chair, []float64{0, 180}, nil},
	{Boat, []float64{90}, []float64{0, 60, 120, 180, 240, 300}},
	{TwistBoat, []float64{90}, []float64{30, 90, 150, 210, 270, 330}},
	{HalfChair, []float64{30, 150}, nil},
	{HalfBoat, []float64{60, 120}, nil},
}

//Classify assigns the conformational family whose landmark is nearest to the
//given (theta, phi) pair, in degrees. Theta is reduced modulo 180 and phi
//modulo 360 first, so the assignment is periodic in both angles. The distance
//is the plain Euclidean norm of the (latitude, longitude) difference, with
//latitude = 90-theta; family boundaries were tuned against this metric, not
//against the geodesic one. Every query maps to exactly one family. Note that
//for a near-planar ring (Q close to zero) theta comes from atan2 of two
//near-zero numbers, so the label carries little meaning there.
func Classify(thetaDeg, phiDeg float64) string {
	theta := math.Mod(thetaDeg, 180)
	if theta < 0 {
		theta += 180
	}
	phi := math.Mod(phiDeg, 360)
	if phi < 0 {
		phi += 360
	}
	lat := Deg2Rad(90 - theta)
	lon := Deg2Rad(phi)
	best := families[0].label
	min := math.Inf(1)
	for _, fam := range families {
		phis := fam.phis
		if phis == nil {
			phis = []float64{phi}
		}
		for _, t := range fam.thetas {
			for _, p := range phis {
				d := math.Hypot(lat-Deg2Rad(90-t), lon-Deg2Rad(p))
				if d < min {
					min = d
					best = fam.label
				}
			}
		}
	}
	return best
}
