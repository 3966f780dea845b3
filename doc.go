/*
 * doc.go, part of gofission.
 *
 *
 * Copyright 2024 The gofission Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*Package fission is the main package of the gofission library. It provides the
nuclide type, the element table and the constants shared by the rest of the
packages, which turn simulated fission events into entries for a
nuclear reaction-network input file.

	**gofission Capabilities**

    Reads GEF list-mode (lmd) event files, plain or compressed, sequentially.

    Counts fragmentation channels and prunes them to the dominant ones,
	with either a fixed or an adaptive relative-frequency threshold.

    Renormalizes the retained channels and writes them as fission entries
	(single_rate or rate_table) in the network input format.

    Evaluates theoretical spontaneous-fission half-lives.

    Builds fission entries for a whole (Z, A) grid concurrently, or completes
	an existing file of entries lacking the reaction channels.

    Writes beta-decay entries from tabulated half-lives.

    Produces fragment mass and charge yield histograms, and plots them.

The packages are:

	lmd: reader for the event files.
	channels: channel counting, pruning and renormalization.
	netfile: reading and writing network entries.
	halflife: theoretical fission rates.
	batch: concurrent processing of many nuclides.
	decays: beta-decay entries.
	histo: yield histograms.
	yieldplot: yield plots.

The gofission command (cmd/gofission) exposes all of the above.
*/
package fission
