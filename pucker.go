/*
 * pucker.go, part of gopucker
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

//Cremer-Pople ring puckering coordinates for N-membered rings.
//Based on Cremer and Pople, J Am Chem Soc, 97, 1354, (1975).

package pucker

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	//tolerances for the snap-to-zero guard on the Fourier components of
	//odd-membered rings. An all-near-zero component vector is replaced by
	//exact zeros so noise doesn't produce arbitrary phase angles.
	snapRtol = 1e-6
	snapAtol = 1e-8

	//smallest |R1xR2| for which the mean-plane normal is still considered
	//defined.
	normalEps = 1e-10
)

// Result holds the puckering description of one ring. Amplitudes has one
// entry per Fourier index k (for even rings the last entry is the unpaired,
// signed q_{N/2} term, which carries no angle, so the angle slices are one
// entry shorter). Q is the Euclidean norm of Amplitudes. ThetaDeg and PhiDeg
// are only meaningful for six-membered rings.
type Result struct {
	Amplitudes []float64
	AnglesDeg  []float64
	AnglesRad  []float64
	Q          float64
	ThetaDeg   float64
	PhiDeg     float64
}

//Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

//Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

//Translate returns a copy of coords with the centroid of the points at the
//origin.
func Translate(coords *mat.Dense) *mat.Dense {
	r, _ := coords.Dims()
	var mean [3]float64
	for i := 0; i < r; i++ {
		row := coords.RawRowView(i)
		mean[0] += row[0]
		mean[1] += row[1]
		mean[2] += row[2]
	}
	for k := range mean {
		mean[k] /= float64(r)
	}
	out := mat.NewDense(r, 3, nil)
	for i := 0; i < r; i++ {
		row := coords.RawRowView(i)
		out.SetRow(i, []float64{row[0] - mean[0], row[1] - mean[1], row[2] - mean[2]})
	}
	return out
}

//MeanPlane returns the two vectors R1 and R2 spanning the Cremer-Pople mean
//plane of the ring. Coords must be centered at the origin (see Translate).
func MeanPlane(coords *mat.Dense) (R1, R2 []float64) {
	N, _ := coords.Dims()
	R1 = make([]float64, 3)
	R2 = make([]float64, 3)
	for j := 0; j < N; j++ {
		row := coords.RawRowView(j)
		s := math.Sin(2 * math.Pi * float64(j) / float64(N))
		c := math.Cos(2 * math.Pi * float64(j) / float64(N))
		for k := 0; k < 3; k++ {
			R1[k] += s * row[k]
			R2[k] += c * row[k]
		}
	}
	return R1, R2
}

//Normal returns the unit normal to the mean plane of the ring, R1xR2/|R1xR2|.
//It returns a *DegenerateRingError when R1 and R2 are close enough to
//parallel for the normal to be undefined.
func Normal(coords *mat.Dense) ([]float64, error) {
	R1, R2 := MeanPlane(coords)
	n := cross(R1, R2)
	norm := floats.Norm(n, 2)
	if norm < normalEps {
		return nil, &DegenerateRingError{Norm: norm}
	}
	floats.Scale(1/norm, n)
	return n, nil
}

//Displacements returns the signed distance of each ring atom from the mean
//plane, the fundamental puckering signal.
func Displacements(coords *mat.Dense) ([]float64, error) {
	n, err := Normal(coords)
	if err != nil {
		return nil, errDecorate(err, "Displacements")
	}
	N, _ := coords.Dims()
	z := make([]float64, N)
	for j := range z {
		z[j] = floats.Dot(coords.RawRowView(j), n)
	}
	return z, nil
}

//Parameters computes the Cremer-Pople puckering amplitudes and phase angles
//from the out-of-plane displacements z of an N-membered ring (N = len(z)).
//For even N the returned amplitude slice ends with the unpaired, signed
//q_{N/2} term, which has no phase angle, so the angle slices have one entry
//less than the amplitudes. Only 5 <= N <= 20 is accepted; anything else
//returns a *InvalidRingSizeError.
func Parameters(z []float64) (amplitudes, anglesDeg, anglesRad []float64, err error) {
	N := len(z)
	if N <= 4 || N > 20 {
		return nil, nil, nil, &InvalidRingSizeError{Size: N}
	}
	even := N%2 == 0
	top := (N - 1) / 2
	if even {
		top = N/2 - 1
	}
	qcos := make([]float64, 0, top-1)
	qsin := make([]float64, 0, top-1)
	f := math.Sqrt(2 / float64(N))
	for k := 2; k <= top; k++ {
		var sc, ss float64
		for j := 0; j < N; j++ {
			arg := 2 * math.Pi * float64(k) * float64(j) / float64(N)
			sc += z[j] * math.Cos(arg)
			ss += z[j] * math.Sin(arg)
		}
		qcos = append(qcos, f*sc)
		qsin = append(qsin, -f*ss)
	}
	if !even {
		qcos = snapToZero(qcos)
		qsin = snapToZero(qsin)
	}
	amplitudes = make([]float64, len(qcos))
	anglesDeg = make([]float64, len(qcos))
	anglesRad = make([]float64, len(qcos))
	for i := range qcos {
		amplitudes[i] = math.Hypot(qsin[i], qcos[i])
		a := math.Atan2(qsin[i], qcos[i])
		if a < 0 {
			a += 2 * math.Pi
		}
		anglesRad[i] = a
		anglesDeg[i] = Rad2Deg(a)
	}
	if even {
		//the k=N/2 frequency is fully real and keeps its sign.
		var s float64
		for j := 0; j < N; j++ {
			s += z[j] * math.Cos(float64(j)*math.Pi)
		}
		amplitudes = append(amplitudes, s/math.Sqrt(float64(N)))
	}
	return amplitudes, anglesDeg, anglesRad, nil
}

//TotalAmplitude returns Q, the Euclidean norm of the puckering amplitudes.
//Q is zero only for an exactly planar ring.
func TotalAmplitude(amplitudes []float64) float64 {
	return floats.Norm(amplitudes, 2)
}

//SphericalPolarSix reduces the puckering description of a six-membered ring
//to the (Q, theta, phi) spherical-polar set, with theta and phi in degrees.
//It requires exactly the two amplitude components of a six-membered ring
//(q2 and the signed q3 term) and returns a *UnsupportedRingSizeError
//otherwise. The recursive reduction for general N is not implemented.
func SphericalPolarSix(amplitudes, anglesDeg []float64) (Q, thetaDeg, phiDeg float64, err error) {
	if len(amplitudes) != 2 || len(anglesDeg) < 1 {
		return 0, 0, 0, &UnsupportedRingSizeError{Amplitudes: len(amplitudes)}
	}
	Q = floats.Norm(amplitudes, 2)
	thetaDeg = Rad2Deg(math.Atan2(amplitudes[0], amplitudes[1]))
	phiDeg = anglesDeg[0]
	return Q, thetaDeg, phiDeg, nil
}

//Pucker computes the full puckering description of a ring given as an Nx3
//matrix of positions in traversal order. The coordinates do not need to be
//centered. For six-membered rings the spherical-polar angles are filled in;
//for other sizes ThetaDeg and PhiDeg are left at zero.
func Pucker(ring *mat.Dense) (*Result, error) {
	cen := Translate(ring)
	z, err := Displacements(cen)
	if err != nil {
		return nil, errDecorate(err, "Pucker")
	}
	amps, adeg, arad, err := Parameters(z)
	if err != nil {
		return nil, errDecorate(err, "Pucker")
	}
	res := &Result{Amplitudes: amps, AnglesDeg: adeg, AnglesRad: arad}
	res.Q = TotalAmplitude(amps)
	if len(z) == 6 {
		_, res.ThetaDeg, res.PhiDeg, err = SphericalPolarSix(amps, adeg)
		if err != nil {
			return nil, errDecorate(err, "Pucker")
		}
	}
	return res, nil
}

//replaces x by exact zeros when every entry is within the snap tolerances of
//zero. The comparison follows |x| <= atol + rtol*|x|.
func snapToZero(x []float64) []float64 {
	for _, v := range x {
		if math.Abs(v) > snapAtol+snapRtol*math.Abs(v) {
			return x
		}
	}
	return make([]float64, len(x))
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
