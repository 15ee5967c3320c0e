//Package osc implements the subset of OpenSoundControl 1.0 needed to
//remote control a video production host from momentary control surfaces
//(http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based
//protocol developed for communication among computers, sound synthesizers,
//and other multimedia devices.
//
//Scope
//
//A datagram carries one or more OSC messages back to back with no length
//prefix. Each message is an address pattern string, a type tag string and
//a block of big endian argument values, every field padded to a 4 byte
//boundary. Supported argument TypeTags:
//
//	'f' (float32)
//	'i' (int32)
//	's' (string)
//
//Bundles, time tags, blobs and the remaining OSC argument types are out of
//scope: control surface traffic does not use them, and the packet scan
//simply ends when it meets one.
//
//Decoding is deliberately lenient. A malformed message ends the scan of
//the datagram it appears in; messages decoded before it are kept. Nothing
//is ever reported to the sender.
//
//Usage
//
//Receiving:
//  l := osc.NewListener(17999, osc.HandlerFunc(func(msg *osc.Message) {
//      fmt.Println(msg)
//  }))
//  if err := l.Start(); err != nil {
//      log.Fatal(err)
//  }
//
//Sending:
//  client, _ := osc.Dial("localhost:17999")
//  msg := osc.NewMessage("/obs/scene/2/go")
//  msg.Append(float32(1.0))
//  client.Send(msg)
package osc
