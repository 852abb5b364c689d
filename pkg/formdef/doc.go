// Package formdef loads declarative form definitions from YAML or JSON files
// and builds formelement forms from them. Element attributes keep the order
// they are written in and are applied through the element attribute
// callbacks, so keys such as label, required or validators configure the
// element itself rather than becoming markup.
//
//	forms:
//	  signup:
//	    action: /signup
//	    elements:
//	      - name: email
//	        type: email
//	        attributes:
//	          label: E-Mail
//	          required: true
//	        validators:
//	          required: {}
//	          stringlength: {max: 120}
//	      - name: contacts
//	        type: multi
//	        prototype:
//	          - name: phone
//	            type: tel
package formdef
