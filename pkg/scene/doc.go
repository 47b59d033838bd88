// Package scene reads and writes block scenes as JSON.
//
// A scene is a set of blocks plus the state of each block on screen:
// where it is drawn, whether it is visible or collapsed, and where each of
// its connectors sits relative to the block origin. It is the input the
// command line tool feeds to the link checker.
//
// # JSON Format
//
//	{
//	  "blocks": [
//	    {
//	      "id": "sum",
//	      "label": "+",
//	      "genus": "math",
//	      "location": {"x": 100, "y": 40},
//	      "connectors": [
//	        {"kind": "plug", "type": "number", "offset": {"x": 0, "y": 10}},
//	        {"kind": "socket", "type": "number", "label": "a", "offset": {"x": 30, "y": 0}},
//	        {"kind": "socket", "type": "number", "label": "b", "offset": {"x": 30, "y": 20}}
//	      ]
//	    }
//	  ]
//	}
//
// Optional block fields are label, genus, hidden and collapsed. Connector
// kinds are "plug", "before", "socket" and "after". A block may carry a plug
// or a before connector but not both; such scenes are rejected on import.
//
// # Import and Export
//
// Use [ImportJSON] to read a file, or [ReadJSON] for any io.Reader. Both
// return coded errors from [github.com/openblocks/blocklink/pkg/errors].
// [ExportJSON] and [WriteJSON] write a scene back out.
//
// Each [View] implements [github.com/openblocks/blocklink/pkg/link.Renderable],
// so [Scene.Neighbors] can be handed straight to the link checker.
package scene
