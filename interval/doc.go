// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package interval provides the genomic-range plumbing shared by the record
  sources and the row packer: parsing of samtools-style region strings, and
  SpanIndex, an overlap index over half-open integer spans backed by the
  biogo/store interval tree.
*/
package interval
