/*
Package types defines the data structures shared by tally's packages.

# Counter

Counter is the only persisted record: a name and a signed 64-bit count.
A snapshot on disk is an ordered JSON array of counters; the order of the
array is the display order.

	[
	  {
	    "name": "Pushups",
	    "count": 12
	  }
	]
*/
package types
