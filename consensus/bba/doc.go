// Copyright 2018 The go-klaytn Authors
// This file is part of the go-klaytn library.
//
// The go-klaytn library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-klaytn library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-klaytn library. If not, see <http://www.gnu.org/licenses/>.

// Package bba implements the Binary Byzantine Agreement core of an
// asynchronous BFT consensus stack: each of N validators supplies one
// boolean input, and every correct validator eventually outputs the same
// boolean, which was the input of at least one correct validator. Up to
// f Byzantine validators are tolerated, 3f < N.
//
// The algorithm proceeds in epochs. At the start of an epoch a node
// multicasts BVal(e) for its current estimate e. Once f+1 validators have
// asserted a value b, at least one is correct, so b is multicast as BVal(b)
// too (if not already). Once 2f+1 validators have asserted b, b is added to
// bin_values and, the first time bin_values becomes non-empty, Aux(b) is
// multicast. Once N-f Aux (or Term, which counts as Aux for every later
// epoch) values whose value lies in bin_values have been seen, a common
// coin is consulted: in epochs 0 mod 3 the coin is fixed true, in 1 mod 3
// fixed false, otherwise a Conf round runs first and a distributed coin
// flip decides. If the counted values (the Aux values, or in a Conf round
// the admissible Conf values) name a single candidate equal to the coin,
// that value is decided and a Term message is broadcast. Either way the
// epoch then advances, with that single candidate as the new estimate if
// there is one, and the coin value otherwise.
package bba
