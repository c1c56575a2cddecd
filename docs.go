/*
Package everyuuid provides a reversible mapping between every index in [0, 2^122)
and a random looking version 4 style identifier.

A simplified example might be:

	index, _ := everyuuid.ParseIndex("42")
	id, _ := everyuuid.IndexToIdentifier(index) // e484b3a7-ca17-4587-85e9-c0e178aee072
	back, _ := everyuuid.IdentifierToIndex(id)  // 42

The mapping runs a 4 round feistel network over the two 61 bit halves of
the index, then lays the result out around the fixed version and variant bits.
Every index maps to a distinct identifier, and every identifier with
the version 4 and variant 10 markers maps back to exactly one index.

The mapping is not a cipher; the round keys are fixed and public.

The package also includes a [Cursor] for paging through windows of the
index space, and a [Probe] that counts collisions between randomly
generated identifiers across many goroutines.
*/
package everyuuid
