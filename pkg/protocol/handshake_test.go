package protocol

import (
	"reflect"
	"testing"
)

func TestClientHelloRoundTrip(t *testing.T) {
	ch := &ClientHello{Version: CurrentVersion, Path: "/signup?step=2", SessionID: "abc"}
	got, err := DecodeClientHello(EncodeClientHello(ch))
	if err != nil {
		t.Fatalf("DecodeClientHello() error = %v", err)
	}
	if !reflect.DeepEqual(got, ch) {
		t.Errorf("got %+v, want %+v", got, ch)
	}
}

func TestServerHelloRoundTrip(t *testing.T) {
	sh := &ServerHello{Status: HandshakeNotFound, SessionID: "s-1"}
	got, err := DecodeServerHello(EncodeServerHello(sh))
	if err != nil {
		t.Fatalf("DecodeServerHello() error = %v", err)
	}
	if *got != *sh {
		t.Errorf("got %+v, want %+v", got, sh)
	}
	if got.Status.String() != "NotFound" {
		t.Errorf("Status.String() = %q", got.Status.String())
	}
}

func TestDecodeClientHelloTruncated(t *testing.T) {
	data := EncodeClientHello(&ClientHello{Version: CurrentVersion, Path: "/"})
	for i := 0; i < len(data); i++ {
		if _, err := DecodeClientHello(data[:i]); err == nil {
			t.Errorf("DecodeClientHello(%d bytes) succeeded", i)
		}
	}
}

func TestVersionCompatible(t *testing.T) {
	if !(ProtocolVersion{Major: CurrentVersion.Major, Minor: 9}).Compatible() {
		t.Error("minor bump should stay compatible")
	}
	if (ProtocolVersion{Major: CurrentVersion.Major + 1}).Compatible() {
		t.Error("major bump should be incompatible")
	}
}

func TestErrorMessageRoundTrip(t *testing.T) {
	em := &ErrorMessage{Code: "E062", Message: "Page not found", Fatal: true}
	got, err := DecodeErrorMessage(EncodeErrorMessage(em))
	if err != nil {
		t.Fatal(err)
	}
	if *got != *em {
		t.Errorf("got %+v, want %+v", got, em)
	}
}
