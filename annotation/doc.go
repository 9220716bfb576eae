// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package annotation decodes RepeatMasker "joined" records into typed
  sub-intervals.

  A joined record only stores its aligned blocks precisely.  Unaligned
  flanks, inner unaligned blocks and the connectors that join them to the
  aligned blocks are rebuilt by Decompose from the block arrays, by splitting
  the slack (or the overlap) between two aligned anchors evenly between both
  sides.  The resulting Segments of one record are wrapped in a Group, which
  is the unit the layout package assigns rows to.

  All coordinates are genomic.  Segment.Start is the record's chromStart plus
  the block-relative offset, minus one.
*/
package annotation
