// Package dom provides an in-memory document tree with the subset of the
// WHATWG DOM that a caret-tracking editor needs.
//
// The tree is stored in an arena owned by a Document. Nodes are addressed
// by NodeID handles; each node records its parent and its first, last,
// previous and next relatives as handles, so sibling traversal is O(1)
// and no pointer cycles exist between nodes.
//
// # Node Kinds
//
//   - KindText: character data stored as UTF-16 code units, so Length and
//     SplitText offsets are exactly the ones a browser reports
//   - KindElement: a tag name, ordered attributes and children
//   - KindComment: character data that never takes part in text layout
//
// # Live Ranges
//
// Ranges created with Document.NewRange are live: every mutation
// (insertion, removal, replace-data, SplitText, Normalize) moves their
// boundary points the way the DOM standard prescribes. A Selection holds
// live ranges, so after Range.DeleteContents or Normalize the selection
// still describes the caret the user would see.
//
// # Serialization
//
// OuterHTML and InnerHTML follow the HTML fragment serialization
// algorithm: attributes in insertion order, void elements without end
// tags, and the standard escaping of "&", "<", ">", '"' and U+00A0.
// SetInnerHTML parses markup with golang.org/x/net/html.
//
// # Thread Safety
//
// Document, Range and Selection are not safe for concurrent use.
package dom
