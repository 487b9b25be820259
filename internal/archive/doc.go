// Package archive defines the doujin-event entity model and its canonical
// JSON documents.
//
// Five record types nest inside each other: an EventGroup owns Events, an
// Event owns Circles, and Events, Circles and groups carry Media and Sources.
// Every entity converts to a document struct whose field order fixes the key
// order on disk, and back again.
//
// # Canonical form
//
// Optional fields are emitted only when presence.Slice or presence.String
// says they carry something. Entities keep raw values exactly as the
// collector supplied them; omission happens once, in ToDocument. Decoding
// leaves missing optional keys absent (nil or ""), so a loaded entity
// re-serializes to the same keys it was read from.
//
// # Errors
//
// ToDocument fails with *ValidationError when a mandatory field is empty.
// FromDocument and the Decode helpers fail with *MalformedDocumentError for
// missing keys or wrong shapes, and *InvalidEnumError for unknown
// reliability or origin names. All three match their Err* sentinel with
// errors.Is.
//
// # Entry Points
//
// EncodeEvent/DecodeEvent: one event shard.
// EncodeEventGroup/DecodeEventGroup: the monolithic single-file form.
// Marshal/UnmarshalStrict: byte-level helpers shared with the store.
// ParseDates: interpret an Event.Dates value.
package archive
