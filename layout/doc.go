// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package layout assigns display rows to annotation groups and positions
  their labels.

  Layout runs in three explicit phases, none of which mutates its input:

    l, err := layout.Pack(groups)              // group and segment ID -> row
    segs, err := layout.Assign(groups, l)      // row-stamped segment copies
    adj := layout.PlaceLabels(segs, layout.DefaultLabelFreeSpace)
    segs = layout.ApplyLabels(segs, adj)

  PlaceLabels must only be called once every group has its row, since a
  label's left neighbour is defined by the sorted contents of its row.
*/
package layout
