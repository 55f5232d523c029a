package typechecker

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/MashPlant/decaf-go/pkg/parser"
)

// checkSource parses src, checks it, and renders every diagnostic the way
// the command line does, position first.
func checkSource(t *testing.T, src string) []string {
	t.Helper()
	prog, err := parser.ParseProgram([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, diags := New().Check(prog)
	var got []string
	for _, d := range diags {
		got = append(got, d.String())
	}
	return got
}

func TestSemanticDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			"initializer cannot see its own variable",
			`class Main {
  static void main() {
    int x = x;
  }
}
`,
			[]string{"3:13: undeclared variable 'x'"},
		},
		{
			"use before a shadowing local reaches the field",
			`class A {
  string x;
  void m() {
    int y = x;
    int x = 2;
  }
}
class Main {
  static void main() {
  }
}
`,
			[]string{"4:11: incompatible operands: int = string"},
		},
		{
			"unreachable code reported once per region",
			`class Main {
  static int run() {
    return 1;
    Print("a");
    Print("b");
  }
  static void main() {
    run();
  }
}
`,
			[]string{"4:5: unreachable code"},
		},
		{
			"break only counts while loops",
			`class Main {
  static void main() {
    for (int i = 0; i < 3; i = i + 1) {
      break;
    }
    while (true) {
      break;
    }
    break;
  }
}
`,
			[]string{
				"4:7: 'break' is only allowed inside a loop",
				"9:5: 'break' is only allowed inside a loop",
			},
		},
		{
			"fields are private to the class hierarchy",
			`class Animal {
  int legs;
}
class Main {
  static void main() {
    Animal a;
    a = new Animal();
    Print(a.legs);
  }
}
`,
			[]string{"8:13: field 'legs' of 'class Animal' is not accessible here"},
		},
		{
			"a loop is never a definite return",
			`class Main {
  static int spin() {
    while (true) {
      spin();
    }
  }
  static void main() {
    spin();
  }
}
`,
			[]string{"2:21: missing return statement: control reaches end of non-void method"},
		},
		{
			"array length takes no arguments",
			`class Main {
  static void main() {
    int[] a;
    a = new int[3];
    Print(a.length(), a.length(1));
  }
}
`,
			[]string{"5:25: length() expects 0 argument(s), got 1"},
		},
		{
			"class name is not a value",
			`class Util {
  static int zero() {
    return 0;
  }
}
class Main {
  static void main() {
    Print(Util.zero());
    Print(Util);
  }
}
`,
			[]string{"9:11: undeclared variable 'Util'"},
		},
		{
			"instance method needs a receiver",
			`class Counter {
  int bump() {
    return 1;
  }
}
class Main {
  static void main() {
    Counter.bump();
  }
}
`,
			[]string{"8:13: cannot access field 'bump' on 'class Counter'"},
		},
		{
			"call arity and argument types",
			`class M {
  static int add(int a, int b) {
    return a + b;
  }
}
class Main {
  static void main() {
    M.add(1);
    M.add(true, "x");
  }
}
`,
			[]string{
				"8:7: method 'add' expects 2 argument(s), got 1",
				"9:11: incompatible argument 1: bool given, int expected",
				"9:17: incompatible argument 2: string given, int expected",
			},
		},
		{
			"cyclic inheritance",
			`class A extends B {
}
class B extends A {
}
class Main {
  static void main() {
  }
}
`,
			[]string{
				"1:7: illegal cyclic inheritance",
				"3:7: illegal cyclic inheritance",
			},
		},
		{
			"duplicate field names the earlier declaration",
			`class A {
  int x;
  bool x;
}
class Main {
  static void main() {
  }
}
`,
			[]string{"3:8: declaration of 'x' conflicts with a declaration at 2:7"},
		},
		{
			"incompatible override",
			`class Animal {
  int age() {
    return 1;
  }
}
class Dog extends Animal {
  bool age() {
    return true;
  }
}
class Main {
  static void main() {
  }
}
`,
			[]string{"7:8: overriding method 'age' has an incompatible signature"},
		},
		{
			"missing entry point precedes type errors",
			`class A {
  void m() {
    int x = true;
  }
}
`,
			[]string{
				"1:7: no legal 'Main' class with 'static void main()' found",
				"3:11: incompatible operands: int = bool",
			},
		},
		{
			"unknown class in new and non-object instanceof",
			`class Main {
  static void main() {
    int x;
    x = new Wat();
    bool b;
    b = instanceof(x, Main);
  }
}
`,
			[]string{
				"4:9: class 'Wat' not found",
				"6:9: expected an object type, found int",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, test.want, checkSource(t, test.source))
		})
	}
}

func TestWellTypedPrograms(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			"stack of ints",
			`class Stack {
  int[] items;
  int count;
  static Stack make(int cap) {
    Stack s;
    s = new Stack();
    s.items = new int[cap];
    s.count = 0;
    return s;
  }
  void push(int v) {
    items[count] = v;
    count = count + 1;
  }
  int pop() {
    count = count - 1;
    return items[count];
  }
  bool empty() {
    return count == 0;
  }
}
class Main {
  static void main() {
    Stack s;
    s = Stack.make(8);
    s.push(1);
    s.push(2);
    while (!s.empty()) {
      Print(s.pop());
    }
  }
}
`,
		},
		{
			"null comparison and downcast",
			`class Node {
  Node next;
  bool atEnd() {
    return next == null;
  }
  Node tail() {
    if (atEnd()) {
      return this;
    }
    return next.tail();
  }
}
class Leaf extends Node {
}
class Main {
  static void main() {
    Node n;
    n = new Leaf();
    if (instanceof(n, Leaf)) {
      n = (class Leaf)n;
    }
    Print(n.atEnd());
  }
}
`,
		},
		{
			"inherited fields are visible to subclasses",
			`class Animal {
  int legs;
}
class Dog extends Animal {
  int extra(Animal other) {
    return legs - other.legs;
  }
}
class Main {
  static void main() {
    Print(new Dog().extra(new Animal()));
  }
}
`,
		},
		{
			"readers and string plumbing",
			`class Main {
  static void main() {
    string name;
    name = ReadLine();
    int n;
    n = ReadInteger();
    if (n > 0 && name != "") {
      Print(name, " ", n);
    }
  }
}
`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, []string(nil), checkSource(t, test.source))
		})
	}
}
