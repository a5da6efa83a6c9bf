// Package statestore provides the persisted key-value state behind the
// clientstate facade.
//
// The Store interface deliberately separates the two ways a value can
// change: writes through this handle (the facade notifies locally for
// those) and writes by other holders of the same underlying store,
// which arrive on the External channel. Two implementations ship:
//
//   - Memory, a mutex-guarded map for single-instance use and tests.
//     SimulateExternal lets tests stand in for another writer.
//
//   - Redis, which shares state across client instances and uses a
//     pub/sub channel to deliver other instances' writes, dropping its
//     own by tagging every message with the writer's instance ID.
//
// Values are stored as canonical strings; the clientstate package owns
// the encoding of booleans and language codes.
package statestore
