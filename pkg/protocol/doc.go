// Package protocol implements the binary wire format used by the live
// connection.
//
// Every message is a Frame: a 4-byte header (type, flags, big-endian payload
// length) followed by the payload. Payloads are written with Encoder and read
// with Decoder using unsigned varints and length-prefixed strings.
//
// A live session is a short exchange:
//
//	client → FrameHandshake  ClientHello{Version, Path, SessionID}
//	server → FrameHandshake  ServerHello{Status, SessionID}
//	server → FramePatches    PatchesFrame{Seq, Patches}
//	server → FrameError      ErrorMessage (on failure)
//
// Patches produced by directive mounts carry the Force flag so that clients
// apply them even when the attribute already holds the same text.
package protocol
