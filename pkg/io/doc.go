// Package io provides JSON import and export for grown trees.
//
// # JSON Format
//
// A tree document is a single object. Nodes are listed in creation order, so
// every parent index refers to an earlier entry and the root is always first:
//
//	{
//	  "version": 1,
//	  "iterations": 4,
//	  "unreached": 0,
//	  "nodes": [
//	    {"position": [0, 0, 0], "direction": [0, 1, 0], "parent": -1},
//	    {"position": [0, 1, 0], "direction": [0, 1, 0], "parent": 0}
//	  ],
//	  "settings": { ... }
//	}
//
// The optional settings object records the configuration that produced the
// tree so that a later render can reuse its stroke colour and thickness.
//
// # Import
//
// [ReadJSON] and [ImportJSON] validate the decoded tree (single root, parent
// indices pointing backwards, unit directions) and the embedded settings, so a
// document that imports cleanly can be rendered without further checks.
//
// # Export
//
// [WriteJSON] and [ExportJSON] emit indented JSON. Coordinates are written in
// their shortest exact form, so export followed by import reproduces the tree
// bit for bit. The pipeline relies on this to cache trees.
package io
