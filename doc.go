/*
 * doc.go, part of gopucker
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

/*Package pucker computes Cremer-Pople ring-puckering coordinates for cyclic
molecules and classifies six-membered rings into the canonical conformational
families (chair, boat, twist-boat, half-chair and half-boat).

Given the positions of the ring atoms in traversal order, the package fits
the Cremer-Pople mean plane, projects the out-of-plane displacements, and
runs the parity-dependent Fourier decomposition to obtain the puckering
amplitudes, the total amplitude Q and, for six-membered rings, the
spherical-polar pair (theta, phi). The description is invariant to rigid
rotations and translations of the ring.

The package also reads single-snapshot XYZ geometries (plain, gzip or zstd
compressed) and carries the ring-index tables for the diketopiperazine
series; tables for other systems can be supplied in YAML. The batch
subpackage analyzes whole directory trees of geometries and persists the
results, and puckplot renders amplitude histograms and conformational
scatter plots.

Rings with fewer than 5 or more than 20 atoms are rejected, and each call
operates on one static geometry; there is no trajectory support.
*/
package pucker
