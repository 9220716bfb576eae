// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Command bio-rmsk-layout decomposes RepeatMasker joined records into typed
  segments and packs them into display rows.

  Usage:
    bio-rmsk-layout layout [-regions chr1:1-100000;chr2] [-out segs.tsv] rmsk.bed.gz
    bio-rmsk-layout check rmsk.json

  "layout" writes one TSV row per segment; see package encoding/rmskbed for
  the input and output formats.  Without -regions, every chromosome in the
  input is laid out as one query.  Queries are independent and run in
  parallel.

  "check" decodes every record and lists the ones that would be skipped,
  grouped by error kind.  It exits with an error if any record fails.
*/
package main
