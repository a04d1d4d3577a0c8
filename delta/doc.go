// Package delta implements the delta history table: a small adaptive cache of
// recently referenced indices that turns most dictionary references into one or
// two bytes.
//
// A table owns 2^w slots. Encoding an index picks the slot whose value is closest,
// emits (slot, delta) and then updates the slots:
//
//   - an exact hit refreshes the slot's recency;
//   - a close match (delta inside the configured window) moves the slot forward and
//     remembers the old value, collapsing duplicate predictors of a constant-stride run;
//   - anything else evicts the least recently used slot.
//
// Decoding applies exactly the same update, so a reader's table evolves in
// lockstep with the writer's and the predictor state never needs to be transmitted.
//
// On the wire a reference is one flag byte followed by a signed delta:
//
//	flag = slot | class<<w
//	class 0: int8 delta, class 1: int16 delta, class 2: int32 delta
//	class 3: reserved; (3<<w | slotMask) marks a value that is not in the table
//
// A HistoryTable is not safe for concurrent use.
package delta
