package app

// sampleLesson is opened when no lesson file is given.
const sampleLesson = `title: Reading a file
language: python
min_regions: 2
source: |
  import sys


  def count_words(path):
      with open(path) as f:
          text = f.read()
      return len(text.split())


  if __name__ == "__main__":
      print(count_words(sys.argv[1]))
explanations:
  - line: 1
    code: import sys
    description: Loads the module that holds the command line arguments.
  - line: 4
    code: def
    description: Starts a function that takes the file path as its only argument.
  - line: 5
    code: with
    description: Opens the file and closes it again when the block ends.
  - line: 6
    code: f.read()
    description: Reads the whole file into one string.
  - line: 7
    code: split
    description: Splits the text on whitespace; len counts the pieces.
  - line: 10
    code: __name__
    description: True only when the file is run directly, not imported.
  - line: 11
    code: sys.argv[1]
    description: The first argument after the script name.
`
