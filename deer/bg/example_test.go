package bg

import "fmt"

func ExampleExponential_Evaluate() {
	b, _ := Exponential{}.Evaluate([]float64{0, 1, 2}, []float64{0.5})
	fmt.Printf("%.4f %.4f %.4f\n", b[0], b[1], b[2])
	// Output:
	// 1.0000 0.6065 0.3679
}

func ExamplePoly1_Evaluate() {
	b, _ := Poly1{}.Evaluate([]float64{0, 2}, []float64{1, -1}, 1)
	fmt.Printf("%.1f %.1f\n", b[0], b[1])
	// Output:
	// 1.0 -1.0
}

func ExampleByName() {
	m, ok := ByName("hom3d")
	fmt.Println(ok, m.Describe().Parameters[0])
	// Output:
	// true Concentration of pumped spins
}

func ExampleAll() {
	for _, m := range All() {
		fmt.Printf("%s:%d ", m.Name(), m.Describe().NumParams())
	}
	fmt.Println()
	// Output:
	// exp:1 hom3d:1 hom3dex:2 homfractal:2 strexp:2 prodstrexp:4 sumstrexp:5 poly1:2 poly2:3 poly3:4
}
