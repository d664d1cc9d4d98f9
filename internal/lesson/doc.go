// Package lesson loads lesson content: the source text shown on the
// annotated surface and the explanations anchored to it.
//
// A lesson file is YAML:
//
//	title: Split grading into functions
//	file: grades.py
//	min_regions: 3
//	source: |
//	  import csv
//	  ...
//	explanations:
//	  - line: 6
//	    code: f
//	    description: The open file handle.
//
// language is optional; when absent it is detected from file and source.
package lesson
