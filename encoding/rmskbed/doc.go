// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package rmskbed reads RepeatMasker joined records and writes laid-out
  segments.

  Two input encodings are supported:

  BED: the UCSC rmskJoined BED12+2 text form (e.g. the output of bigBedToBed
  on rmsk.bb), one record per line with the tab-separated columns
    chrom chromStart chromEnd name score strand alignStart alignEnd reserved
    blockCount blockSizes blockStarts id description
  where blockSizes and blockStarts are comma-separated lists, with an optional
  trailing comma.  Lines starting with '#' are ignored.

  JSON: an array of objects with the fields id, chrom, chromStart, chromEnd,
  name, score, strand, blockCount, blockSizes and blockStarts, as served by
  the RepeatMasker range-query service.

  Either may be gzip-compressed.  The output is a TSV file with a header row
  and one row per segment.
*/
package rmskbed
