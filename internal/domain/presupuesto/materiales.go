package presupuesto

// MaterialesSugeridos catálogo fijo de materiales frecuentes del taller para el
// autocompletado del formulario de carga.
var MaterialesSugeridos = []string{
	"Caño 20x20", "Caño 30x30", "Caño 40x40", "Caño 20x10", "Caño 40x20",
	"Caño redondo 1'", "Caño redondo 1 1/4", "Caño redondo 1 1/2",
	"Ángulo 1/2 x 1/8", "Ángulo 3/4 x 1/8", "Ángulo 1 x 1/8",
	"Planchuela 1/2 x 1/8", "Planchuela 3/4 x 1/8", "Planchuela 1 x 1/8",
	"Hierro liso 6mm", "Hierro liso 8mm", "Hierro del 10", "Hierro del 12",
	"Electrodo 2.5mm (paquete)", "Electrodo 3.25mm",
	"Disco de corte 4 1/2", "Disco de desbaste",
	"Pintura Convertidor Negro", "Antióxido Rojo", "Thinner 1L",
}
